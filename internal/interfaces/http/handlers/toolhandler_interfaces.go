package handlers

import (
	"io"

	"officetools/internal/application/tools/grammar"
	"officetools/internal/application/tools/imaging"
)

type grammarChecker interface {
	Check(text string) (*grammar.Result, error)
}

type imageProcessor interface {
	Process(src io.Reader, opts imaging.Options) (*imaging.Output, error)
}

type markdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}
