package main

import "github.com/tidepool-org/riskanalytics/api"

func main() {
	api.MainLoop()
}
