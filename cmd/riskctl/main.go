package main

import "github.com/tidepool-org/riskanalytics/cmd/riskctl/command"

func main() {
	command.Execute()
}
