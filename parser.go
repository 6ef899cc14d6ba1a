package osm2pt

import (
	"fmt"
)

type Parser struct {
	filename     string
	minZoom      int
	maxZoom      int
	workers      int
	strictMode   bool
	verbose      bool
	mergeOptions MergeOptions
	metrics      *Metrics
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Public transport parser parameters:
	filename: '%s'
	min_zoom: %d
	max_zoom: %d
	workers: %d
	strict_mode enabled?: %t
	merge min_length: %f
	merge tolerance: %f
	merge buffer: %f
	`,
		parser.filename,
		parser.minZoom,
		parser.maxZoom,
		parser.workers,
		parser.strictMode,
		parser.mergeOptions.MinLength,
		parser.mergeOptions.Tolerance,
		parser.mergeOptions.Buffer,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename:     fileName,
		minZoom:      0,
		maxZoom:      DEFAULT_MAX_ZOOM,
		workers:      0,
		strictMode:   false,
		verbose:      false,
		mergeOptions: DefaultMergeOptions(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithFilename(fileName string) func(*Parser) {
	return func(parser *Parser) {
		parser.filename = fileName
	}
}

func WithZoomRange(minZoom, maxZoom int) func(*Parser) {
	return func(parser *Parser) {
		parser.minZoom = minZoom
		parser.maxZoom = maxZoom
	}
}

func WithWorkers(workers int) func(*Parser) {
	return func(parser *Parser) {
		parser.workers = workers
	}
}

func WithStrictMode(strictMode bool) func(*Parser) {
	return func(parser *Parser) {
		parser.strictMode = strictMode
	}
}

func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}

func WithParserMergeOptions(opts MergeOptions) func(*Parser) {
	return func(parser *Parser) {
		parser.mergeOptions = opts
	}
}

func WithMetrics(metrics *Metrics) func(*Parser) {
	return func(parser *Parser) {
		parser.metrics = metrics
	}
}
