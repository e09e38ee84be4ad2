// Package errors provides coded, actionable error messages for vstyle.
//
// Each error has a unique code (e.g., "E160") that maps to:
//   - A category (props, render, config, build, publish, cli)
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E122").
//	    WithDetail("dev.port is 70000").
//	    WithSuggestion("Use a port between 1 and 65535")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E122: Invalid port
//	//
//	//   dev.port is 70000
//	//
//	//   Hint: Use a port between 1 and 65535
//	//
//	//   Learn more: https://vstyle.dev/docs/errors/E122
//
// Errors built with Wrap keep the cause reachable through errors.Is and
// errors.As.
package errors
