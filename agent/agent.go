// Package agent implements the AI assistant that answers questions about a
// loaded comparison session. The registry previews and the classification
// report are handed to the model as context, so the analyst can ask things
// like "which customers lost chipsets this year?" without leaving the
// terminal.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Agent writing its output to w and reading user input
// from r (e.g. os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader) *Agent {
	return &Agent{
		w: w,
		r: bufio.NewReader(r),
	}
}

// Start creates the chat session, grounding the model on the session report.
func (a *Agent) Start(ctx context.Context, client *genai.Client, report string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt(report)}},
		},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return fmt.Errorf("cannot create chat session: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the model's text answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Initial prompts, if
// any, are answered before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, report string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, report); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to chipdiff assist. Type 'bye' to exit.")

	for _, p := range prompts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		fmt.Fprintf(a.w, "%s%s\n", prompt, p)
		answer, err := a.Ask(ctx, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}

	for {
		fmt.Fprint(a.w, prompt)
		line, err := a.r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		if question == "bye" {
			fmt.Fprintln(a.w, "Goodbye.")
			return nil
		}
		answer, err := a.Ask(ctx, question)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}

// systemPrompt grounds the assistant on the loaded session.
func systemPrompt(report string) string {
	var b strings.Builder
	b.WriteString("You are an analyst assistant for chipset sales rosters. ")
	b.WriteString("You answer questions about the comparison session below: per-year chipset records ")
	b.WriteString("(chipset id, customer, PDM name) and the Added / Removed / Reappeared classification. ")
	b.WriteString("Answer only from this data and say so when the data cannot answer.\n\n")
	b.WriteString(report)
	return b.String()
}
