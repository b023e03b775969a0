package template

import (
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
)

// Template is the raw template text and where it came from
type Template struct {
	Path string
	Text string
}

// Load reads the whole template at path, relative to the working directory.
// Any read failure is reported as TEMPLATE_NOT_FOUND.
func Load(fsys filesystem.FS, path string) (*Template, error) {
	logger := logging.GetLogger("template").With().Str("path", path).Logger()

	data, err := fsys.ReadFile(path)
	if err != nil {
		logger.Debug().Err(err).Msg("Template read failed")
		return nil, errors.Wrapf(err, errors.ErrTemplateNotFound,
			"unable to read template %s; run mwbotctl from the directory that contains it", path).
			WithDetail("path", path)
	}

	logger.Debug().Int("bytes", len(data)).Msg("Template loaded")
	return &Template{Path: path, Text: string(data)}, nil
}
