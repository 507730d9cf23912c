// Terminal chat client for the portfolio assistant. Useful for poking the
// proxy without the website frontend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"portfolio-backend/internal/chatclient"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "portfolio backend URL")
	timeout := flag.Duration("timeout", 60*time.Second, "per-request timeout")
	flag.Parse()

	session := chatclient.NewSession(chatclient.NewClient(*serverURL, *timeout))
	session.Open()
	defer session.Close()

	fmt.Printf("assistant> %s\n", session.Last().Content)
	if suggestions := session.Suggestions(); len(suggestions) > 0 {
		fmt.Println("\nTry asking:")
		for _, s := range suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	fmt.Println("\nType a question, or /quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "/quit" || line == "/exit" {
			break
		}

		session.SetDraft(line)
		if !session.Submit(context.Background()) {
			continue
		}
		fmt.Printf("assistant> %s\n", session.Last().Content)
	}
}
