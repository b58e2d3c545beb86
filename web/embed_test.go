package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticContainsClient(t *testing.T) {
	files := Static()
	for _, name := range []string{"index.html", "login.html", "registro.html", "js/main.js", "js/auth.js", "js/theme.js"} {
		_, err := fs.Stat(files, name)
		assert.NoError(t, err, name)
	}
}
