package sys

// codeText holds the messages SDL_Error writes for each code. SDL 1.2 keeps
// only the text in its error slot, so the code is recovered by matching it.
// "Unknown SDL error" is the fallback for out-of-range codes and stays
// unmapped.
var codeText = map[string]int{
	"Out of memory":                   ENoMem,
	"Error reading from datastream":   EFRead,
	"Error writing to datastream":     EFWrite,
	"Error seeking in datastream":     EFSeek,
	"That operation is not supported": Unsupported,
}

// CodeForText returns the SDL_errorcode whose fixed message is text, or
// NoErrorCode for free-form messages.
func CodeForText(text string) int {
	if code, ok := codeText[text]; ok {
		return code
	}
	return NoErrorCode
}
