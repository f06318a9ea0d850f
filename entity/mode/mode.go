package mode

import "fmt"

type Mode uint8

const (
	Blur Mode = iota
	Acquisition
	Theta
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "b", "blur":
		return Blur, nil
	case "a", "acquisition":
		return Acquisition, nil
	case "t", "theta":
		return Theta, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Blur:
		return "blur"
	case Acquisition:
		return "acquisition"
	case Theta:
		return "theta"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
