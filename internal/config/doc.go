// Package config provides configuration parsing for vstyle projects.
//
// The configuration is stored in vstyle.json at the project root. Every
// field is optional; missing fields take the defaults from New.
//
// # Configuration File Structure
//
//	{
//	  "name": "gallery",
//	  "sheet": {
//	    "prefix": "ui"
//	  },
//	  "dev": {
//	    "port": 3100,
//	    "host": "localhost",
//	    "liveStyles": true
//	  },
//	  "build": {
//	    "output": "dist",
//	    "fingerprint": true
//	  },
//	  "publish": {
//	    "bucket": "my-assets",
//	    "prefix": "styles/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Dev.Port)
package config
