package parameter

// Display Name
const (
	// NameDelimiter separates first and last token in raw input
	NameDelimiter = "_"

	// NameMaxLength is the raw input ceiling, in characters
	NameMaxLength = 21

	// NameFallback replaces missing or unsafe input
	NameFallback = "shinsuke_nakamura"

	// NameFallbackTooLong replaces input over NameMaxLength
	NameFallbackTooLong = "shorter_name"

	// NameDenylist holds the characters that reject input outright
	NameDenylist = `&<>"'/`
)
