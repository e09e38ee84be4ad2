// Package build writes a static build of a vstyle page.
//
// This package handles:
//   - Rendering the page to index.html
//   - Writing the compiled sheet as a fingerprinted stylesheet
//   - Build manifest generation
//
// # Usage
//
//	builder := build.New(cfg, showcase.Page, build.Options{})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Built in %s\n", result.Duration)
//	fmt.Printf("Stylesheet: %s\n", result.Stylesheet)
//
// # Output Structure
//
//	dist/
//	├── index.html           # Rendered page, links the stylesheet
//	├── styles.5f3a09c1.css  # Compiled sheet
//	└── manifest.json        # Asset manifest
//
// # Manifest
//
// The manifest maps logical asset names to the written files:
//
//	{
//	  "styles.css": "styles.5f3a09c1.css"
//	}
package build
