package camgesture

import (
	"errors"
	"strings"
	"testing"
)

func TestDebugPanicDisabled(t *testing.T) {
	debugPanic(false, errors.New("ignored"))
}

func TestDebugPanicEnabled(t *testing.T) {
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "camgesture debug: boom") {
			t.Errorf("panic = %v, want camgesture debug message", r)
		}
	}()
	debugPanic(true, errors.New("boom"))
}

func TestControllerDebugMode(t *testing.T) {
	c, _, _ := newTestController()
	lp := &longPress{}
	if err := c.RegisterRecognizer("longpress", func() Recognizer { return lp }); err != nil {
		t.Fatal(err)
	}
	c.SetDebug(true)
	c.HandleSample(mouseDown(0, 0, ButtonPrimary))
	c.HandleSample(mouseMove(10, 0, ButtonPrimary)) // pan wins

	defer func() {
		if recover() == nil {
			t.Error("expected panic for acceptance after pan won")
		}
	}()
	_ = lp.h.Accept()
}
