package components

import "github.com/lixenwraith/ecs-snake/core"

// FollowsComponent marks a trailing body segment
// Leader is a lookup key into the world, resolved each tick; it does not own the leader
type FollowsComponent struct {
	Leader core.Entity
}
