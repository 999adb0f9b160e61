package linklist

import "fmt"

// Origin selects where a relative search starts.
type Origin int

const (
	OriginDefault Origin = iota // keep the stored origin
	OriginHead
	OriginCurrent
	OriginTail
)

func (o Origin) String() string {
	switch o {
	case OriginDefault:
		return "default"
	case OriginHead:
		return "head"
	case OriginCurrent:
		return "current"
	case OriginTail:
		return "tail"
	}
	return fmt.Sprintf("origin(%d)", int(o))
}

func (o Origin) valid() bool { return o >= OriginDefault && o <= OriginTail }

// Direction selects which way a relative search walks. Down is toward the
// tail.
type Direction int

const (
	DirDefault Direction = iota // keep the stored direction
	DirDown
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirDefault:
		return "default"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func (d Direction) valid() bool { return d >= DirDefault && d <= DirUp }

// InsertDir places a record relative to the cursor. Above is toward the head.
type InsertDir int

const (
	InsertDefault InsertDir = iota
	InsertAbove
	InsertBelow
)

func (d InsertDir) String() string {
	switch d {
	case InsertDefault:
		return "default"
	case InsertAbove:
		return "above"
	case InsertBelow:
		return "below"
	}
	return fmt.Sprintf("insert(%d)", int(d))
}

// SetSearchModes sets the origin and direction used by FindNthRecord.
// OriginDefault and DirDefault leave the stored value as is. If either value
// is out of range nothing changes and NotModified is returned.
func (l *List) SetSearchModes(origin Origin, dir Direction) error {
	if !origin.valid() || !dir.valid() {
		return opError("set search modes", NotModified, fmt.Errorf("invalid modes %s/%s", origin, dir))
	}
	if origin != OriginDefault {
		l.origin = origin
	}
	if dir != DirDefault {
		l.dir = dir
	}
	return nil
}

// SearchModes returns the stored origin and direction.
func (l *List) SearchModes() (Origin, Direction) {
	return l.origin, l.dir
}
