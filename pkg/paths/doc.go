// Package paths derives the search roots for pandoc resources.
//
// Two roots are searched, in order:
//
//   - Project: <project root>/.opencode/pandoc, where the project root is
//     given explicitly or defaults to the current working directory
//   - User: <config base>/opencode/pandoc, where the config base is given
//     explicitly or defaults to $XDG_CONFIG_HOME (~/.config)
//
// # Environment Variables
//
//   - XDG_CONFIG_HOME: base config directory, read once at process start
//   - HOME: used to expand a leading ~ in either root
//
// # Usage
//
//	layout, err := paths.New("", "")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(layout.ProjectDir) // /work/paper/.opencode/pandoc
//	fmt.Println(layout.UserDir)    // /home/user/.config/opencode/pandoc
package paths
