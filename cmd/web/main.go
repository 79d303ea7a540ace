// @title           recruit API
// @version         1.0
// @description     Анкеты соискателей, объявления и обращения.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /

package main

import (
	_ "recruit_backend/docs"
	"recruit_backend/internal/app"
)

func main() {
	app.Run()
}
