package input

import "quickpick/internal/domain"

// X11 keysyms understood by FromKeysym
const (
	KeysymUp      uint32 = 0xff52
	KeysymDown    uint32 = 0xff54
	KeysymTab     uint32 = 0xff09
	KeysymKPTab   uint32 = 0xff89
	KeysymReturn  uint32 = 0xff0d
	KeysymKPEnter uint32 = 0xff8d
	KeysymEscape  uint32 = 0xff1b
)

// FromKeysym maps a raw X11 keysym to a navigation intent.
// Keysyms that are not navigation keys report false.
func FromKeysym(keysym uint32) (domain.Intent, bool) {
	switch keysym {
	case KeysymUp:
		return domain.IntentUp, true
	case KeysymDown:
		return domain.IntentDown, true
	case KeysymTab, KeysymKPTab:
		return domain.IntentTab, true
	case KeysymReturn, KeysymKPEnter:
		return domain.IntentCommit, true
	case KeysymEscape:
		return domain.IntentCancel, true
	default:
		return domain.IntentNone, false
	}
}
