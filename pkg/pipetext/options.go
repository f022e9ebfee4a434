package pipetext

import (
	"time"

	"github.com/MinaswanNakamoto/pipetext/pkg/log"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/variables"
)

// Limits applied when the matching Options field is zero
const (
	// DefaultMaxDepth is how deep patterns and variables may nest before their text is left unrendered
	DefaultMaxDepth = 32
	// DefaultMaxRepeat is the largest repeat count or end column. Larger counts are written out as literal text
	DefaultMaxRepeat = 1 << 16
	// DefaultMaxNested is how many nested pattern and variable renders a single top level call may start
	DefaultMaxNested = 1 << 16
)

// maxRepeatLimit keeps the repeat accumulator well clear of overflowing an int
const maxRepeatLimit = 1 << 30

// SizeProvider supplies the terminal size used to seed the width and height variables
type SizeProvider interface {
	Size() (width, height int, err error)
}

// FixedSize is a SizeProvider that always returns the same size
type FixedSize struct {
	Width, Height int
}

// Size implements SizeProvider
func (f FixedSize) Size() (int, int, error) { return f.Width, f.Height, nil }

// Options configure a Session
type Options struct {
	// BoxMode allows the |- and |= single and double line box modes
	BoxMode bool
	// AmpersandMode makes '&' a background colour sentinel from the start
	AmpersandMode bool
	// Emoji is the table used for |[name] lookups. nil means no emoji
	Emoji *emoji.Table
	// CaseSensitiveEmoji disables case folding in emoji abbreviations
	CaseSensitiveEmoji bool
	// Variables is shared with the session if set, otherwise the session gets its own store
	Variables *variables.Store
	// Size seeds the width and height variables when the session is created
	Size SizeProvider
	// Sleep is called for |[Ns] and |[Nms]. nil disables the delay directives
	Sleep func(time.Duration)
	// MaxDepth bounds recursion through patterns and variables, zero means DefaultMaxDepth
	MaxDepth int
	// MaxRepeat caps repeat counts and end columns, zero means DefaultMaxRepeat
	MaxRepeat int
	// MaxNested caps the nested renders started by one top level call, zero means DefaultMaxNested. Once it is spent
	// any further pattern or variable is left unrendered
	MaxNested int
	Logger    *log.Logger
}

// DefaultOptions returns Options with box drawing enabled, ampersand mode off and real sleeps
func DefaultOptions() Options {
	return Options{
		BoxMode:   true,
		Sleep:     time.Sleep,
		MaxDepth:  DefaultMaxDepth,
		MaxRepeat: DefaultMaxRepeat,
		MaxNested: DefaultMaxNested,
		Logger:    log.Discard(),
	}
}

// env is shared by a session and every nested render it starts
type env struct {
	store     *variables.Store
	resolver  *emoji.Resolver
	sleep     func(time.Duration)
	maxDepth  int
	maxRepeat int
	maxNested int
	log       *log.Logger

	// nested render budget left for the current top level call
	nestedLeft int
	budgetWarned bool
}

func newEnv(opts Options) *env {
	e := &env{
		store:     opts.Variables,
		resolver:  emoji.NewResolver(opts.Emoji).SetCaseSensitive(opts.CaseSensitiveEmoji),
		sleep:     opts.Sleep,
		maxDepth:  opts.MaxDepth,
		maxRepeat: opts.MaxRepeat,
		maxNested: opts.MaxNested,
		log:       opts.Logger,
	}

	if e.store == nil {
		e.store = variables.New()
	}

	if e.maxDepth <= 0 {
		e.maxDepth = DefaultMaxDepth
	}

	if e.maxRepeat <= 0 {
		e.maxRepeat = DefaultMaxRepeat
	} else if e.maxRepeat > maxRepeatLimit {
		e.maxRepeat = maxRepeatLimit
	}

	if e.maxNested <= 0 {
		e.maxNested = DefaultMaxNested
	}

	if e.log == nil {
		e.log = log.Discard()
	}

	return e
}
