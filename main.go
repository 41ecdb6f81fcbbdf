package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"classlauncher/config"
	"classlauncher/icon"
	"classlauncher/launcher"
	"classlauncher/storage"
	"classlauncher/ui"
)

func main() {
	// Check for command-line arguments
	if len(os.Args) > 1 {
		handleCommandLineArgs()
		return
	}

	// Normal GUI mode
	log.Println("Starting ClassLauncher...")
	store := storage.NewManager()
	cfg := config.NewService(store)
	cache := icon.NewCache(store.IconCacheDir(), nil)
	resolver := icon.NewResolver(store.IconCacheDir())

	sidebar := ui.NewSidebar(cfg, cache, resolver)
	sidebar.ShowAndRun()
}

// handleCommandLineArgs processes command-line arguments
func handleCommandLineArgs() {
	args := os.Args[1:]

	switch args[0] {
	case "-launch", "--launch":
		if len(args) < 2 {
			fmt.Println("Error: Button number required")
			showUsage()
			return
		}
		launchButtonByNumber(args[1])
	case "-list", "--list":
		listButtons()
	case "-roster", "--roster":
		if len(args) < 2 {
			fmt.Println("Error: Roster file required")
			showUsage()
			return
		}
		importRoster(args[1])
	case "-reset", "--reset":
		resetConfig()
	case "-help", "--help", "-h", "--h":
		showUsage()
	default:
		fmt.Printf("Unknown option: %s\n", args[0])
		showUsage()
	}
}

// launchButtonByNumber launches a button by its number in the list
func launchButtonByNumber(buttonNumber string) {
	cfg := config.NewService(storage.NewManager())
	buttons := cfg.Buttons()

	num, err := strconv.Atoi(buttonNumber)
	if err != nil {
		fmt.Printf("Invalid button number: %s\n", buttonNumber)
		return
	}

	index := num - 1
	if index < 0 || index >= len(buttons) {
		fmt.Printf("Button number %d not found. Available buttons:\n", num)
		listButtons()
		return
	}

	btn := buttons[index]
	fmt.Printf("Launching %s...\n", btn.Name)

	mgr := launcher.NewManager()
	if err := mgr.Launch(btn, cfg.Settings()); err != nil {
		fmt.Printf("Error launching %s: %v\n", btn.Name, err)
	} else {
		fmt.Printf("Successfully launched %s\n", btn.Name)
	}
}

// listButtons lists all configured buttons
func listButtons() {
	cfg := config.NewService(storage.NewManager())
	buttons := cfg.Buttons()

	if len(buttons) == 0 {
		fmt.Println("No buttons configured.")
		return
	}

	fmt.Println("Configured buttons:")
	fmt.Println("===================")
	for i, btn := range buttons {
		fmt.Printf("%d. %s [%s]\n", i+1, btn.Name, btn.Action)
		fmt.Printf("   Target: %s\n", btn.Target)
		fmt.Println()
	}
}

// importRoster imports the student roster from a text file
func importRoster(path string) {
	cfg := config.NewService(storage.NewManager())
	if impErr := cfg.ImportStudents(path); impErr != nil {
		fmt.Printf("Import failed: %s\n", impErr.Message)
		return
	}
	fmt.Printf("Imported %d students.\n", len(cfg.Students()))
}

// resetConfig restores the compiled-in default configuration
func resetConfig() {
	cfg := config.NewService(storage.NewManager())
	if err := cfg.ResetToDefaults(true); err != nil {
		fmt.Printf("Error resetting config: %v\n", err)
		return
	}
	fmt.Println("Configuration reset to defaults.")
}

// showUsage displays command-line usage information
func showUsage() {
	fmt.Println("ClassLauncher - Command Line Usage")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Println("GUI Mode (default):")
	fmt.Println("  classlauncher")
	fmt.Println()
	fmt.Println("Command Line Options:")
	fmt.Println("  -launch <number>   Launch button by number")
	fmt.Println("  -list              List all configured buttons")
	fmt.Println("  -roster <file>     Import student roster from TXT/CSV")
	fmt.Println("  -reset             Reset configuration to defaults")
	fmt.Println("  -help              Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  classlauncher -launch 1         # Launch the first button")
	fmt.Println("  classlauncher -roster names.csv # Import a class roster")
}
