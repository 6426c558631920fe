package main

import "github.com/aliasparty/backend/cmd"

func main() {
	cmd.Execute()
}
