package output

// Output formats understood by the writers registry.
const (
	FormatFASTA = "fasta"
	FormatNames = "names"
)

// DefaultLineWidth is the number of sequence characters per FASTA line.
const DefaultLineWidth = 60
