package constants

import (
	"time"

	"nl2query/pkg/nlq"
)

const (
	LanguageCypher    = nlq.TagCypher
	LanguageKusto     = nlq.TagKusto
	LanguageMongo     = nlq.TagMongo
	LanguageDataframe = nlq.TagDataframe
)

// DefaultDecoder is the registry name of the decoder built from the
// environment at startup.
const DefaultDecoder = "default"

const DefaultQueryCacheTTL = 10 * time.Minute
