package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail_Found(t *testing.T) {
	got := Email("owner prefers email, reach her at mary@earthtones.shop anytime")
	assert.Equal(t, "mary@earthtones.shop", got)
}

func TestEmail_FirstWins(t *testing.T) {
	got := Email("a@one.com then b@two.com")
	assert.Equal(t, "a@one.com", got)
}

func TestEmail_None(t *testing.T) {
	assert.Empty(t, Email("no contact details given"))
}

func TestWebsite_AbsoluteURL(t *testing.T) {
	got := Website("their site is https://spiceoflife.com/wholesale.")
	assert.Equal(t, "https://spiceoflife.com/wholesale", got)
}

func TestWebsite_WWWPrefixed(t *testing.T) {
	got := Website("see www.spiceoflife.com for hours")
	assert.Equal(t, "http://www.spiceoflife.com", got)
}

func TestWebsite_BareDomain(t *testing.T) {
	got := Website("their shop site spiceoflife.com lists stockists")
	assert.Equal(t, "http://spiceoflife.com", got)
}

func TestWebsite_RejectsSocialAndEmail(t *testing.T) {
	assert.Empty(t, Website("follow https://instagram.com/mysticsoul"))
	assert.Empty(t, Website("facebook.com/spiceoflife is their only presence"))
	assert.Empty(t, Website("email mary@earthtones.shop"))
	// A dotted local part must not be read as a bare domain.
	assert.Empty(t, Website("email john.doe@gmail.com for wholesale"))
}

func TestInstagram_FromProfileURL(t *testing.T) {
	got := Instagram("follow them https://www.instagram.com/mysticsoulritualshop/")
	assert.Equal(t, "@mysticsoulritualshop", got)
}

func TestInstagram_FromHandle(t *testing.T) {
	got := Instagram("their handle is @spice_of_life805")
	assert.Equal(t, "@spice_of_life805", got)
}

func TestInstagram_IgnoresEmail(t *testing.T) {
	assert.Empty(t, Instagram("email mary@earthtones.shop for details"))
}

func TestInstagram_None(t *testing.T) {
	assert.Empty(t, Instagram("no social presence"))
}
