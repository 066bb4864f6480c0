package book

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatEPUB Format = "epub"
	FormatMOBI Format = "mobi"
	FormatAZW3 Format = "azw3"
)

func (f Format) String() string {
	return string(f)
}

func (f Format) IsValid() bool {
	switch f {
	case FormatPDF, FormatEPUB, FormatMOBI, FormatAZW3:
		return true
	default:
		return false
	}
}

func NewFormat(s string) (Format, error) {
	format := Format(s)
	if !format.IsValid() {
		return "", ErrInvalidFormat
	}
	return format, nil
}
