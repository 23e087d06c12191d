package menukit

// PopupKind selects the accent styling of a modal overlay.
type PopupKind uint8

const (
	PopupInfo PopupKind = iota
	PopupSuccess
	PopupWarning
	PopupError
	PopupQuestion
)

func (k PopupKind) String() string {
	switch k {
	case PopupInfo:
		return "info"
	case PopupSuccess:
		return "success"
	case PopupWarning:
		return "warning"
	case PopupError:
		return "error"
	case PopupQuestion:
		return "question"
	default:
		return "INVALID"
	}
}

// PopupResult is how a closed modal overlay reports what the user chose.
// None means the overlay is still open (or nothing was ever shown).
type PopupResult uint8

const (
	PopupNone PopupResult = iota
	PopupOK
	PopupCancel
)

func (r PopupResult) String() string {
	switch r {
	case PopupNone:
		return "none"
	case PopupOK:
		return "ok"
	case PopupCancel:
		return "cancel"
	default:
		return "INVALID"
	}
}

// SettingKind tags which member of a Setting is active.
type SettingKind uint8

const (
	SettingBool SettingKind = iota
	SettingRange
	SettingOption
	SettingSubscreen
)

func (k SettingKind) String() string {
	switch k {
	case SettingBool:
		return "bool"
	case SettingRange:
		return "range"
	case SettingOption:
		return "option"
	case SettingSubscreen:
		return "subscreen"
	default:
		return "INVALID"
	}
}
