package extensions

// noops only exist to make chains read like sentences.
var noops = []string{
	"to", "the", "and", "be", "been", "is", "an", "a", "that",
	"which", "does", "still", "also", "but", "of", "have", "or",
}

var negations = []string{"not", "never"}
