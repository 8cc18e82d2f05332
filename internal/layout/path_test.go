package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blobstore/cas/internal/layout"
)

func TestBasePathLayout(t *testing.T) {
	hexAddr := "0A4D55A8D778E5022FAB701977C5D840BBC486D0"
	base := layout.BasePath("/root", hexAddr)
	assert.Equal(t, "/root/0A4D/55A8D778E5022FAB701977C5D840BBC486D0", base)
}

func TestSiblingPath(t *testing.T) {
	hexAddr := "0A4D55A8D778E5022FAB701977C5D840BBC486D0"
	sib := layout.SiblingPath("/root", hexAddr, "gzip")
	assert.Equal(t, "/root/0A4D/55A8D778E5022FAB701977C5D840BBC486D0.gzip", sib)
}

func TestValidEncodingName(t *testing.T) {
	assert.True(t, layout.ValidEncodingName("gzip"))
	assert.True(t, layout.ValidEncodingName("deflate"))
	assert.False(t, layout.ValidEncodingName(""))
	assert.False(t, layout.ValidEncodingName("has.dot"))
	assert.False(t, layout.ValidEncodingName("has/slash"))
	assert.False(t, layout.ValidEncodingName(`has\backslash`))
}

func TestNameLenMatchesAddressMinusPrefix(t *testing.T) {
	assert.Equal(t, 36, layout.NameLen)
	assert.Equal(t, 4, layout.PrefixLen)
}
