// Package runtime provides the execution context for zero commands.
//
// It encapsulates shared dependencies needed by actions, such as the logger,
// the loaded configuration, prompt templates and the user input source.
package runtime
