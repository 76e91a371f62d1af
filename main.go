// @title                       Social Webbase API
// @version                     1.0
// @description                 Follow graph, likes and comment threads over posts.
// @host                        localhost:8000
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

package main

import "social-webbase/cmd"

func main() {
	cmd.Execute()
}
