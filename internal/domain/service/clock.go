package service

import "time"

// Clock is the time source of the matching engine. Production uses the host clock in local
// time; tests inject fixed instants.
type Clock interface {
	Now() time.Time
}
