// Defines the Request and Device value types that flow through the facility.
// Requests carry a group tag and a type; the type doubles as the priority.

package sim

import "fmt"

// Request type (priority) bounds. Higher type means higher priority
// within a group.
const (
	MinRequestType = 1
	MaxRequestType = 3
)

// Request is a single unit of work. It is immutable once created:
// the generator builds it, the store orders it, a worker consumes it.
type Request struct {
	GroupID int // target group, in [0, numGroups)
	Type    int // priority, in [MinRequestType, MaxRequestType]
}

func (r Request) String() string {
	return fmt.Sprintf("Request{group=%d type=%d}", r.GroupID, r.Type)
}

// Device identifies one worker. IDs are globally unique across all
// groups, assigned once at startup, and used only for reporting.
type Device struct {
	GroupID int
	ID      int
}

func (d Device) String() string {
	return fmt.Sprintf("Device{id=%d group=%d}", d.ID, d.GroupID)
}
