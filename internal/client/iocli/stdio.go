package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх терминала или произвольных потоков
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	termFd int // -1 если ввод не терминал
}

// NewStdio возвращает IO поверх os.Stdin и os.Stdout
func NewStdio() IO {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return &Stdio{in: bufio.NewReader(os.Stdin), out: os.Stdout, termFd: fd}
}

// NewStreams возвращает IO поверх заданных потоков, пароль читается как обычная строка
func NewStreams(in io.Reader, out io.Writer) IO {
	return &Stdio{in: bufio.NewReader(in), out: out, termFd: -1}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput читает одну строку. Один reader на весь сеанс: иначе
// буферизованный ввод теряется между командами доски.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		// Последняя строка без перевода строки все равно команда
		if err == io.EOF && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль без эха, если ввод - терминал
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.termFd < 0 {
		return s.ReadInput(prompt)
	}
	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.termFd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
