package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a telebot context that records what handlers send.
// Methods it does not override panic, so tests notice unexpected calls.
type FakeContext struct {
	tele.Context

	From     *tele.User
	Input    string
	Tap      *tele.Callback
	EditErr  error
	Sent     []interface{}
	SentOpts [][]interface{}
	Edited   []interface{}
	Answers  []*tele.CallbackResponse
	Actions  []tele.ChatAction
}

// NewFakeContext creates a context for a text message from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{From: &tele.User{ID: userID, Username: "tester"}, Input: text}
}

// NewFakeCallback creates a context for an inline button tap from userID
func NewFakeCallback(userID int64, data string) *FakeContext {
	return &FakeContext{
		From: &tele.User{ID: userID, Username: "tester"},
		Tap:  &tele.Callback{ID: "cb", Data: data},
	}
}

func (f *FakeContext) Sender() *tele.User { return f.From }

func (f *FakeContext) Text() string { return f.Input }

func (f *FakeContext) Callback() *tele.Callback { return f.Tap }

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, what)
	f.SentOpts = append(f.SentOpts, opts)
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edited = append(f.Edited, what)
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		f.Answers = append(f.Answers, nil)
	} else {
		f.Answers = append(f.Answers, resp[0])
	}
	return nil
}

func (f *FakeContext) Notify(action tele.ChatAction) error {
	f.Actions = append(f.Actions, action)
	return nil
}

// LastText returns the newest edited text, or the newest sent text
// when nothing was edited
func (f *FakeContext) LastText() string {
	for _, list := range [][]interface{}{f.Edited, f.Sent} {
		for i := len(list) - 1; i >= 0; i-- {
			if s, ok := list[i].(string); ok {
				return s
			}
		}
	}
	return ""
}
