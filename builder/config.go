// Package builder provides internal configuration types and functional
// options for the pattern-shape constructors. It centralizes the vertex ID
// scheme and bipartite-partition prefixes so every impl_*.go file shares one
// consistent config resolution path.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// As a rule, option constructors never panic at runtime, and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for shape builders:
//   - idFn:        function mapping index→vertex ID (IDFn).
//   - leftPrefix:  label prefix for the left partition of CompleteBipartite.
//   - rightPrefix: label prefix for the right partition of CompleteBipartite.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	idFn        IDFn
	leftPrefix  string
	rightPrefix string
}

// defaultLeftPrefix and defaultRightPrefix name the two sides of
// CompleteBipartite when WithPartitionPrefix is not supplied.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: DefaultIDFn, "L"/"R" partition prefixes.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// If idFn is nil, this option is a no-op.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithPartitionPrefix sets CompleteBipartite's left/right label prefixes.
// Empty values are interpreted as "use defaults", not an error.
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		if left != "" {
			cfg.leftPrefix = left
		}
		if right != "" {
			cfg.rightPrefix = right
		}
	}
}
