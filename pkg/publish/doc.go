// Package publish uploads a vstyle build to its serving location.
//
// A Publisher walks the build output and puts every file to a Target. Two
// targets are provided: S3Target writes to an S3 bucket (or any
// S3-compatible store) and DirTarget copies into a local directory.
//
//	client := publish.NewS3Client(publish.S3Config{Region: "eu-west-1"})
//	p := publish.New(publish.NewS3Target(client, "assets-bucket"), publish.Options{
//	    Prefix: "vstyle/",
//	})
//	objects, err := p.Publish(ctx, "dist")
//
// Fingerprinted files are sent with a long-lived Cache-Control header;
// index.html and manifest.json are sent with "no-cache" so a new build is
// picked up immediately.
package publish
