package clipboard

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52Clipboard_WritesEscapeSequence(t *testing.T) {
	var out bytes.Buffer
	c := NewOSC52Clipboard(&out)

	require.NoError(t, c.Copy("#FF5733\n#33FF57"))

	encoded := base64.StdEncoding.EncodeToString([]byte("#FF5733\n#33FF57"))
	assert.Contains(t, out.String(), "\x1b]52;c;"+encoded)
}
