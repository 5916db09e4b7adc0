package nlq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptFlat(t *testing.T) {
	vocab, err := NewVocabulary("Passengers", []string{"Name", "Age", "Pclass"})
	require.NoError(t, err)

	prompt, supp := BuildPrompt("what is the average age of passengers", TagKusto, vocab)

	assert.Equal(t, "kusto: what is the average age of passengers | passengers : name, age, pclass", prompt)
	// comma-joined identifiers keep their separator in the token
	assert.Equal(t, CasefoldMap{
		"passengers": "Passengers",
		"name,":      "Name,",
		"age,":       "Age,",
		"pclass":     "Pclass",
	}, supp)
}

func TestBuildPromptGraph(t *testing.T) {
	vocab, err := NewGraphVocabulary(
		[]NodeLabel{{Label: "Person", Properties: []string{"Name"}}},
		[]string{"FRIENDS_WITH"},
	)
	require.NoError(t, err)

	prompt, supp := BuildPrompt("who are alice's friends", TagCypher, vocab)

	assert.Equal(t, "cypher: who are alice's friends | person : name | relationships : friends_with", prompt)
	assert.Equal(t, "Person", supp["person"])
	assert.Equal(t, "FRIENDS_WITH", supp["friends_with"])
}

func TestBuildPromptGraphWithoutRelationships(t *testing.T) {
	vocab, err := NewGraphVocabulary(
		[]NodeLabel{{Label: "Person", Properties: []string{"Name"}}},
		nil,
	)
	require.NoError(t, err)

	prompt, _ := BuildPrompt("list people", TagCypher, vocab)
	assert.Equal(t, "cypher: list people | person : name", prompt)
	assert.NotContains(t, prompt, "relationships")
}

func TestBuildPromptIsLowercase(t *testing.T) {
	vocab, err := NewVocabulary("Events", []string{"EventID", "Timestamp"})
	require.NoError(t, err)

	prompt, _ := BuildPrompt("Count Events By Day", TagKusto, vocab)
	assert.Equal(t, strings.ToLower(prompt), prompt)
}

func TestBuildPromptSupplementaryPunctuation(t *testing.T) {
	vocab, err := NewVocabulary("passengers", []string{"name"})
	require.NoError(t, err)

	_, supp := BuildPrompt("find Braund, Mr. Owen Harris", TagMongo, vocab)

	// whitespace splitting keeps punctuation attached to the token
	assert.Equal(t, "Harris", supp["harris"])
	assert.Equal(t, "Owen", supp["owen"])
	assert.Equal(t, "Braund,", supp["braund,"])
	assert.Equal(t, "Mr.", supp["mr."])
	assert.NotContains(t, supp, "braund")
}

func TestBuildPromptNoMixedCaseTokens(t *testing.T) {
	vocab, err := NewVocabulary("logs", []string{"level"})
	require.NoError(t, err)

	_, supp := BuildPrompt("count errors by level", TagKusto, vocab)
	assert.Empty(t, supp)
}
