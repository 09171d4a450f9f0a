package realiser

// Token is one realised word with the annotations the formatter needs.
type Token struct {
	// Text is the surface form.
	Text string
	// Category is the lexical category of the word, or canned_text.
	Category Category
	// Function is the discourse function of the nearest constituent that
	// has one.
	Function Function
	// Appositive marks words inside an appositive constituent.
	Appositive bool
}

// InflectionCell is one form of an inflection table.
type InflectionCell struct {
	// Label describes the cell, e.g. "present first plural".
	Label string
	// Features are the features the form was inflected with.
	Features Features
	// Form is the surface form.
	Form string
}

// InflectionTable holds the paradigm of a word.
type InflectionTable struct {
	// Base is the base form the table was computed for.
	Base string
	// Category is the lexical category used.
	Category Category
	// Cells lists the forms in paradigm order.
	Cells []InflectionCell
}
