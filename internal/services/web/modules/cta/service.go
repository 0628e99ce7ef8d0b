package cta

import (
	"strings"

	"github.com/louisbranch/coursefront/internal/services/web/platform/flash"
	"github.com/louisbranch/coursefront/internal/services/web/routepath"
)

// Recognized call-to-action values.
const (
	ActionEnroll  = "enroll"
	ActionPreview = "preview"
	ActionLogin   = "login"
)

// PreviewMessage is the notice shown for the preview action.
const PreviewMessage = "Preview is clicked"

// outcome is the result of one call to action: a navigation target, a
// notice, or both empty.
type outcome struct {
	Location string
	Notice   flash.Notice
}

// dispatch maps a call-to-action value to its outcome. Unknown values
// produce a notice and no navigation.
func dispatch(action string) outcome {
	switch strings.TrimSpace(action) {
	case ActionEnroll:
		return outcome{Location: routepath.Checkout}
	case ActionLogin:
		return outcome{Location: routepath.Login}
	case ActionPreview:
		return outcome{Notice: flash.Notice{Kind: flash.KindInfo, Message: PreviewMessage}}
	default:
		return outcome{Notice: flash.Notice{Kind: flash.KindWarning, Message: "Unknown action: " + action}}
	}
}
