package shell

// Example usage of the shell package:
//
// 1. For one-off commands in a fixed directory:
//
//	sh := shell.NewShell(&shell.Options{WorkingDir: "/tmp"})
//	stdout, stderr, err := sh.Exec(context.Background(), "echo hello")
//
// 2. Running in a directory chosen per call (used by the terminal, whose
//    session owns the current directory):
//
//	stdout, stderr, err := sh.ExecIn(ctx, session.Dir(), "ls -la")
//
// 3. Refusing commands and serving core utils in-process:
//
//	sh := shell.NewShell(&shell.Options{
//	    BlockFuncs: []shell.BlockFunc{shell.CommandsBlocker([]string{"reboot"})},
//	    CoreUtils:  true,
//	})
//
// 4. Inspecting the result:
//
//	if shell.IsExitStatus(err) {
//	    code := shell.ExitCode(err)
//	}
