package format

import "fmt"

type Format int8

const (
	Text Format = iota
	HTML
	Png
	Csv
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "text", "":
		return Text, nil
	case "html":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case HTML:
		return "html"
	case Png:
		return "png"
	case Csv:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// Ext is the file extension conventionally used for the format.
func (f Format) Ext() string {
	switch f {
	case HTML:
		return ".html"
	case Png:
		return ".png"
	case Csv:
		return ".csv"
	default:
		return ".txt"
	}
}
