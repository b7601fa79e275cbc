package components

// VelocityComponent is the per-tick step of a controllable entity
// Valid values are (0,±1), (±1,0) and (0,0); no diagonal movement is representable
type VelocityComponent struct {
	DX, DY int
}
