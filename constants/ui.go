package constants

// Frame Layout Constants
// Row 0 holds the score line, row 1 the top border, the field follows, then the bottom border
const (
	// BorderLeft is the column offset of field column 0
	BorderLeft = 1

	// BorderRight is the number of border columns after the field
	BorderRight = 1

	// ScoreRows is the number of rows reserved above the top border
	ScoreRows = 1

	// BorderTop is the number of top border rows
	BorderTop = 1

	// BorderBottom is the number of bottom border rows
	BorderBottom = 1

	// FieldOffsetX maps field x to frame column
	FieldOffsetX = BorderLeft

	// FieldOffsetY maps field y to frame row
	FieldOffsetY = ScoreRows + BorderTop

	// FrameExtraColumns is the total number of non-field columns
	FrameExtraColumns = BorderLeft + BorderRight

	// FrameExtraRows is the total number of non-field rows
	FrameExtraRows = ScoreRows + BorderTop + BorderBottom
)

// Score Line Constants
const (
	// ScoreColumn is the column where the score text starts
	ScoreColumn = 1

	// ScoreRow is the row of the score text
	ScoreRow = 0

	// ScoreFormat is the score line format
	ScoreFormat = "score: %d"

	// GameOverFormat is the message printed after the terminal is restored
	GameOverFormat = "game over, your final score was: %d\n"
)
