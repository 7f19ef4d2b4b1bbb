package parameter

// Render Geometry
const (
	// CellWidthUnits and CellHeightUnits convert presentation units to terminal cells
	// 1600x700 units map to 160x35 cells; smaller terminals clip
	CellWidthUnits  = 10
	CellHeightUnits = 20

	// NameLetterSpacing is the column pitch of revealed letters
	NameLetterSpacing = 2

	// FilmstripHeight is the row count of the filmstrip band
	FilmstripHeight = 7

	// FilmstripFrameWidth is the column width of one film frame including its gap
	FilmstripFrameWidth = 12
)
