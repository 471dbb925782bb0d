// Command subgatectl is the operator tool for the subgate database: it applies
// the schema and inspects campaigns without running the bot.
package main

func main() {
	Execute()
}
