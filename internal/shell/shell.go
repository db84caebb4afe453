package shell

import (
	"fmt"
	"strings"
)

// Marker는 생성된 스니펫의 첫 줄이다. 설치 여부 판단에 사용한다.
const Marker = "# jump shell integration (v1)"

// DefaultFuncName은 기본 셸 함수 이름이다.
const DefaultFuncName = "j"

// Options는 스니펫 생성 입력이다.
type Options struct {
	// Executable은 jump 실행 파일의 절대 경로다.
	Executable string
	// FuncName은 정의할 셸 함수 이름이다. 비어 있으면 DefaultFuncName.
	FuncName string
}

func (o Options) funcName() string {
	if o.FuncName == "" {
		return DefaultFuncName
	}
	return o.FuncName
}

// Quote는 s를 POSIX 셸의 작은따옴표 문자열로 만든다.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Snippet은 .bashrc/.zshrc에 넣을 셸 함수를 생성한다.
// 동일한 입력에는 항상 동일한 문자열을 반환한다.
func Snippet(opts Options) string {
	fn := opts.funcName()
	exe := Quote(opts.Executable)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Marker)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("  case \"$1\" in\n")

	b.WriteString("    add)\n")
	b.WriteString("      if [ -n \"$2\" ] && [ -n \"$3\" ]; then\n")
	fmt.Fprintf(&b, "        %s add -- \"$2\" \"$3\"\n", exe)
	b.WriteString("      else\n")
	fmt.Fprintf(&b, "        echo \"Usage: %s add <path> <alias>\" >&2\n", fn)
	b.WriteString("        return 1\n")
	b.WriteString("      fi\n")
	b.WriteString("      ;;\n")

	b.WriteString("    rm)\n")
	b.WriteString("      if [ -n \"$2\" ]; then\n")
	fmt.Fprintf(&b, "        %s rm -- \"$2\"\n", exe)
	b.WriteString("      else\n")
	fmt.Fprintf(&b, "        echo \"Usage: %s rm <alias>\" >&2\n", fn)
	b.WriteString("        return 1\n")
	b.WriteString("      fi\n")
	b.WriteString("      ;;\n")

	b.WriteString("    ls|help|setup|doctor)\n")
	fmt.Fprintf(&b, "      %s \"$@\"\n", exe)
	b.WriteString("      ;;\n")

	b.WriteString("    '')\n")
	fmt.Fprintf(&b, "      echo \"Usage: %[1]s <alias> or %[1]s add <path> <alias> or %[1]s rm <alias> or %[1]s ls\" >&2\n", fn)
	b.WriteString("      return 1\n")
	b.WriteString("      ;;\n")

	b.WriteString("    *)\n")
	fmt.Fprintf(&b, "      _jump_dir=$(%s get -- \"$1\")\n", exe)
	b.WriteString("      if [ -n \"$_jump_dir\" ]; then\n")
	b.WriteString("        cd -- \"$_jump_dir\" || { unset _jump_dir; return 1; }\n")
	b.WriteString("        unset _jump_dir\n")
	b.WriteString("      else\n")
	b.WriteString("        unset _jump_dir\n")
	b.WriteString("        echo \"Unknown alias: $1\" >&2\n")
	b.WriteString("        return 1\n")
	b.WriteString("      fi\n")
	b.WriteString("      ;;\n")

	b.WriteString("  esac\n")
	b.WriteString("}\n")
	return b.String()
}

// Instructions는 setup 명령이 출력하는 안내문과 스니펫이다.
func Instructions(opts Options) string {
	var b strings.Builder
	b.WriteString("Jump - Directory Alias Manager Setup Instructions\n\n")
	fmt.Fprintf(&b, "To set up the %s command, add the following to your ~/.bashrc or ~/.zshrc file:\n\n", opts.funcName())
	b.WriteString(Snippet(opts))
	b.WriteString("\nThen reload your shell configuration with:\n")
	b.WriteString("  source ~/.bashrc  # or source ~/.zshrc\n")
	return b.String()
}
