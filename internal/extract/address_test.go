package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_AllThreeParts(t *testing.T) {
	address, city, state := Address("new spot at 123 Main St, Santa Cruz CA, ask for the owner")
	assert.Equal(t, "123 Main St", address)
	assert.Equal(t, "Santa Cruz", city)
	assert.Equal(t, "CA", state)
}

func TestAddress_StateOnly(t *testing.T) {
	address, city, state := Address("they relocated somewhere in OR last spring")
	assert.Empty(t, address)
	assert.Empty(t, city)
	assert.Equal(t, "OR", state)
}

func TestAddress_IgnoresNonStateAcronyms(t *testing.T) {
	_, _, state := Address("left a QR code and my card")
	assert.Empty(t, state)
}

func TestAddress_ClockPhraseNotAnAddress(t *testing.T) {
	address, _, _ := Address("swing by before 10 o'clock, she said")
	assert.Empty(t, address)

	address, _, _ = Address("sign says 10 AM St patrons welcome")
	assert.Empty(t, address)
}

func TestAddress_StreetSuffixRequired(t *testing.T) {
	address, _, _ := Address("counted 40 regular customers on a weekday")
	assert.Empty(t, address)
}

func TestAddress_SuffixVariants(t *testing.T) {
	for text, want := range map[string]string{
		"store at 88 Ocean Ave near the pier": "88 Ocean Ave",
		"moving to 501 Harbor Blvd in June":   "501 Harbor Blvd",
		"warehouse is 12 Industrial Pkwy":     "12 Industrial Pkwy",
	} {
		address, _, _ := Address(text)
		assert.Equal(t, want, address, text)
	}
}

func TestAddress_AdversarialProseIsGracefulNone(t *testing.T) {
	address, city, state := Address("!!!@@@ 10 o'clock AM PM St ???")
	assert.Empty(t, address)
	assert.Empty(t, city)
	assert.Empty(t, state)
}
