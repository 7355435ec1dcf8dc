package lexicon

import _ "embed"

//go:embed data/lexicon.yaml
var defaultLexicon []byte

//go:embed data/stopwords.yaml
var defaultStopWords []byte
