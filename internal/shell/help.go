package shell

func init() {
	Register(&Command{
		Name:        "help",
		Description: "Show this help message",
		Handler: func(s *Shell, args []string) bool {
			s.printHelp()
			return false
		},
	})
}
