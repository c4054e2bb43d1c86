// Package config loads the demo server configuration.
//
// The configuration is stored in dropdown.json next to an optional .env
// file. Every field is optional.
//
// # Configuration File Structure
//
//	{
//	  "port": 3000,
//	  "host": "localhost",
//	  "logLevel": "info",
//	  "logFormat": "text",
//	  "logFile": "logs/dropdown.log",
//	  "pageTTL": "2m",
//	  "devMode": true,
//	  "styleSheets": ["https://cdn.example.com/tailwind.css"]
//	}
//
// # Environment
//
// Variables from .env are loaded without overriding the process
// environment. DROPDOWN_PORT, DROPDOWN_HOST and DROPDOWN_LOG_LEVEL then
// override the file.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	logger, closer, err := cfg.Logger(os.Stderr)
package config
