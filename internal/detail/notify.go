package detail

import (
	"fmt"
	"sync"
)

// Kind classifies a user-visible notification.
type Kind string

const (
	KindFetchTestSuite     Kind = "fetch-test-suite-error"
	KindFetchTestCases     Kind = "fetch-test-cases-error"
	KindUpdateOwner        Kind = "update-owner-error"
	KindUpdateTestSuite    Kind = "update-test-suite-error"
	KindUnexpectedResponse Kind = "unexpected-server-response"
)

var messages = map[Kind]string{
	KindFetchTestSuite:     "Error while fetching test suite!",
	KindFetchTestCases:     "Error while fetching test cases!",
	KindUpdateOwner:        "Error while updating owner!",
	KindUpdateTestSuite:    "Error while updating test suite!",
	KindUnexpectedResponse: "Unexpected response from server!",
}

// Notification is a non-fatal error surfaced to the user.
type Notification struct {
	Kind    Kind
	Message string
	Err     error
}

func newNotification(kind Kind, err error) Notification {
	return Notification{Kind: kind, Message: messages[kind], Err: err}
}

// String prefers the underlying error text and falls back to the stock message.
func (n Notification) String() string {
	if n.Err != nil {
		return fmt.Sprintf("%s: %v", n.Message, n.Err)
	}
	return n.Message
}

// Notifier receives notifications raised by the controller.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Recorder is a Notifier that keeps every notification.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, n)
}

// Notifications returns a copy of what was recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}
