package xml

// Header is the XML declaration, including the trailing newline.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
	newline           = '\n'
)

const (
	escAmp  = "&amp;"
	escLt   = "&lt;"
	escGt   = "&gt;"
	escQuot = "&quot;"
)
