package popmenu

// Node is an element of a host's view tree.
// Root nodes must return an untyped nil from Parent.
type Node interface {
	Parent() Node
}

// Positioned nodes offset their children by Origin, expressed in the parent's space.
type Positioned interface {
	Node
	Origin() Point
}

// Trigger is the control a menu is anchored to.
type Trigger interface {
	Node
	TriggerID() string
}

// Container is a surface that can host a menu and its dismiss mask.
type Container interface {
	Node
	// Bounds is the visible area; its origin is normally (0, 0).
	Bounds() Rect
	// FrameOf returns the bounds of the trigger with the given id in the container's space.
	FrameOf(triggerID string) (Rect, bool)
	Attach(overlay *Overlay)
	Detach(overlay *Overlay)
}

// HostResolver finds the container a trigger's menu should be attached to.
type HostResolver func(trigger Trigger) (Container, bool)

// ResolveHost walks the trigger's ancestors and returns the nearest Container.
func ResolveHost(trigger Trigger) (Container, bool) {
	if trigger == nil {
		return nil, false
	}
	for n := trigger.Parent(); n != nil; n = n.Parent() {
		if c, ok := n.(Container); ok {
			return c, true
		}
	}
	return nil, false
}

// ConvertRect converts r from the space of node from into the space of its ancestor to.
// It reports false if to is not an ancestor of from (or from itself).
func ConvertRect(r Rect, from, to Node) (Rect, bool) {
	for n := from; n != nil; n = n.Parent() {
		if n == to {
			return r, true
		}
		if p, ok := n.(Positioned); ok {
			r = r.Offset(p.Origin())
		}
	}
	return Rect{}, false
}
