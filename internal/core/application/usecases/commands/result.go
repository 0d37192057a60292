package commands

import "strings"

// ResultCode mirrors the HTTP status a presentation layer reports.
type ResultCode int

const (
	CodeOK    ResultCode = 200
	CodeError ResultCode = 500
)

// Messages shown to callers when a step fails. Details go to the log only.
const (
	MsgUnitNotFound     = "unit not found"
	MsgSaveFailed       = "failed to save unit data"
	MsgDeleteFailed     = "failed to remove unit from warehouse"
	MsgCommentFailed    = "failed to save unit comment"
	MsgOrderLinkFailed  = "failed to link unit to order"
	MsgStatusNotChanged = "failed to change unit status"
)

// Result is the outcome of a user driven operation: a code and the ordered
// messages explaining a failure. A successful result has no messages.
type Result struct {
	Code     ResultCode `json:"code"`
	Messages []string   `json:"messages"`
}

func NewResult() Result {
	return Result{Code: CodeOK, Messages: []string{}}
}

// Fail switches the result to CodeError and appends messages.
func (r *Result) Fail(messages ...string) {
	r.Code = CodeError
	r.Messages = append(r.Messages, messages...)
}

// Merge takes over the failure of other, if any.
func (r *Result) Merge(other Result) {
	if other.OK() {
		return
	}
	r.Fail(other.Messages...)
}

func (r Result) OK() bool {
	return r.Code == CodeOK
}

// Text joins the messages with ",". The HTTP adapter logs rejected commands
// with it.
func (r Result) Text() string {
	return strings.Join(r.Messages, ",")
}
