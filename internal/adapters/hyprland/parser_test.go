package hyprland

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypr-showkey/showkey/internal/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		wantOK         bool
		wantModifiers  []string
		wantKey        string
		wantDispatcher string
		wantArgs       string
		wantFlags      string
		wantDesc       string
	}{
		{
			name:           "simple exec",
			line:           "bind = SUPER, T, exec, kitty",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "T",
			wantDispatcher: "exec",
			wantArgs:       "kitty",
			wantDesc:       "Execute: kitty",
		},
		{
			name:           "default mainMod variable",
			line:           "  bind = $mainMod SHIFT, q, killactive,  ",
			wantOK:         true,
			wantModifiers:  []string{"SUPER", "SHIFT"},
			wantKey:        "Q",
			wantDispatcher: "killactive",
			wantDesc:       "Kill active window",
		},
		{
			name:           "modifier aliases and order",
			line:           "bind = shift_control_win, Return, exec, foot",
			wantOK:         true,
			wantModifiers:  []string{"SUPER", "CTRL", "SHIFT"},
			wantKey:        "RETURN",
			wantDispatcher: "exec",
			wantArgs:       "foot",
			wantDesc:       "Execute: foot",
		},
		{
			name:           "duplicate modifiers collapse",
			line:           "bind = SUPER+SUPER+alt, K, movefocus, u",
			wantOK:         true,
			wantModifiers:  []string{"SUPER", "ALT"},
			wantKey:        "K",
			wantDispatcher: "movefocus",
			wantArgs:       "u",
			wantDesc:       "movefocus u",
		},
		{
			name:           "no modifiers",
			line:           "bind = , Print, exec, grim",
			wantOK:         true,
			wantModifiers:  []string{},
			wantKey:        "PRINT",
			wantDispatcher: "exec",
			wantArgs:       "grim",
			wantDesc:       "Execute: grim",
		},
		{
			name:           "args keep commas and case",
			line:           `bind = SUPER, S, exec, notify-send "Hello, World" -t 500`,
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "S",
			wantDispatcher: "exec",
			wantArgs:       `notify-send "Hello, World" -t 500`,
			wantDesc:       `Execute: notify-send "Hello, World" -t 500`,
		},
		{
			name:           "args with extra fields",
			line:           "bind = SUPER, M, movewindowpixel, exact 50% 50%, activewindow",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "M",
			wantDispatcher: "movewindowpixel",
			wantArgs:       "exact 50% 50%, activewindow",
			wantDesc:       "movewindowpixel exact 50% 50%, activewindow",
		},
		{
			name:           "inline comment becomes description",
			line:           "bind = SUPER, L, exec, hyprlock # Lock the screen",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "L",
			wantDispatcher: "exec",
			wantArgs:       "hyprlock",
			wantDesc:       "Lock the screen",
		},
		{
			name:           "hash inside quotes is not a comment",
			line:           `bind = SUPER, C, exec, echo "#tag"`,
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "C",
			wantDispatcher: "exec",
			wantArgs:       `echo "#tag"`,
			wantDesc:       `Execute: echo "#tag"`,
		},
		{
			name:           "escaped hash",
			line:           "bind = SUPER, H, exec, notify-send ##1",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "H",
			wantDispatcher: "exec",
			wantArgs:       "notify-send #1",
			wantDesc:       "Execute: notify-send #1",
		},
		{
			name:           "flags",
			line:           "binde = , XF86AudioRaiseVolume, exec, wpctl set-volume @DEFAULT_AUDIO_SINK@ 5%+",
			wantOK:         true,
			wantModifiers:  []string{},
			wantKey:        "XF86AUDIORAISEVOLUME",
			wantDispatcher: "exec",
			wantArgs:       "wpctl set-volume @DEFAULT_AUDIO_SINK@ 5%+",
			wantFlags:      "e",
			wantDesc:       "Execute: wpctl set-volume @DEFAULT_AUDIO_SINK@ 5%+",
		},
		{
			name:           "bindd description field",
			line:           "bindd = SUPER, 1, Go to workspace one, workspace, 1",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "1",
			wantDispatcher: "workspace",
			wantArgs:       "1",
			wantFlags:      "d",
			wantDesc:       "Go to workspace one",
		},
		{
			name:           "equals sign omitted",
			line:           "bind SUPER, T, exec, kitty",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "T",
			wantDispatcher: "exec",
			wantArgs:       "kitty",
			wantDesc:       "Execute: kitty",
		},
		{
			name:           "equals sign omitted with equals in args",
			line:           "binde SUPER, E, exec, foot --app-id=scratch",
			wantOK:         true,
			wantModifiers:  []string{"SUPER"},
			wantKey:        "E",
			wantDispatcher: "exec",
			wantArgs:       "foot --app-id=scratch",
			wantFlags:      "e",
			wantDesc:       "Execute: foot --app-id=scratch",
		},
		{name: "unbind dispatcher", line: "bind = SUPER, Q, unbind"},
		{name: "unbind keyword", line: "unbind = SUPER, Q"},
		{name: "empty key", line: "bind = SUPER, , exec, kitty"},
		{name: "empty dispatcher", line: "bind = SUPER, T, , kitty"},
		{name: "too few fields", line: "bind = SUPER, T"},
		{name: "comment", line: "# bind = SUPER, T, exec, kitty"},
		{name: "blank", line: "   "},
		{name: "other keyword", line: "monitor = ,preferred,auto,1"},
		{name: "unknown bind flag", line: "bindz = SUPER, T, exec, kitty"},
		{name: "variable definition", line: "$terminal = kitty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantModifiers, got.Modifiers)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantDispatcher, got.Dispatcher)
			assert.Equal(t, tt.wantArgs, got.Args)
			assert.Equal(t, tt.wantFlags, got.Flags)
			assert.Equal(t, tt.wantDesc, got.Description)
			assert.Equal(t, domain.Uncategorized, got.Category)
		})
	}
}

func TestParser_ClassifiesDroppedLines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "unbind dispatcher", line: "bind = SUPER, Q, unbind", wantErr: domain.ErrUnboundLine},
		{name: "unbind keyword", line: "unbind = SUPER, Q", wantErr: domain.ErrUnboundLine},
		{name: "empty key", line: "bind = SUPER, , exec, kitty", wantErr: domain.ErrUnboundLine},
		{name: "unbind keyword without equals", line: "unbind SUPER, Q", wantErr: domain.ErrUnboundLine},
		{name: "malformed", line: "bind = SUPER, T", wantErr: domain.ErrMalformedLine},
		{name: "malformed without equals", line: "bind SUPER, T", wantErr: domain.ErrMalformedLine},
		{name: "bindd missing dispatcher", line: "bindd = SUPER, T, describe", wantErr: domain.ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParser().Parse(tt.line, domain.SourceRef{File: "f", Line: 1})
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParser_NonBindLinesAreSilent(t *testing.T) {
	for _, line := range []string{"", "# comment", "general {", "exec-once = waybar", "$var = x"} {
		got, err := NewParser().Parse(line, domain.SourceRef{})
		assert.Nil(t, got, line)
		assert.NoError(t, err, line)
	}
}

func TestParser_Variables(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("$mainMod = ALT", domain.SourceRef{})
	require.NoError(t, err)
	_, err = p.Parse("$combo = $mainMod CTRL", domain.SourceRef{})
	require.NoError(t, err)
	_, err = p.Parse("$launcher = rofi -show drun", domain.SourceRef{})
	require.NoError(t, err)

	got, err := p.Parse("bind = $combo, $key, exec, $launcher", domain.SourceRef{File: "binds.conf", Line: 4})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, []string{"CTRL", "ALT"}, got.Modifiers)
	assert.Equal(t, "$KEY", got.Key, "unknown variables are kept as written")
	assert.Equal(t, "$launcher", got.Args, "args are not substituted")
	assert.Equal(t, domain.SourceRef{File: "binds.conf", Line: 4}, got.Source)
	assert.Equal(t, "bind = $combo, $key, exec, $launcher", got.Raw)

	got, err = p.Parse("bind $combo, R, exec, $launcher", domain.SourceRef{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"CTRL", "ALT"}, got.Modifiers)
}

func TestParseLine_ModifierRoundTrip(t *testing.T) {
	lines := []string{
		"bind = SUPER SHIFT CTRL, A, exec, x",
		"bind = ctrl+alt, Delete, exit,",
		"bind = MOD4 MOD1, F, fullscreen, 1",
	}

	for _, line := range lines {
		first, ok := ParseLine(line)
		require.True(t, ok)

		reserialized := "bind = " + joinModifiers(first.Modifiers) + ", " + first.Key + ", " + first.Action()
		second, ok := ParseLine(reserialized)
		require.True(t, ok, reserialized)

		assert.ElementsMatch(t, first.Modifiers, second.Modifiers)
		assert.Equal(t, first.Key, second.Key)
		assert.Equal(t, first.Dispatcher, second.Dispatcher)
		assert.Equal(t, first.Args, second.Args)
	}
}

func joinModifiers(mods []string) string {
	out := ""
	for i, m := range mods {
		if i > 0 {
			out += " "
		}
		out += m
	}
	return out
}

func TestGenerateDescription(t *testing.T) {
	tests := []struct {
		dispatcher string
		args       string
		want       string
	}{
		{"exec", "$terminal", "Open terminal"},
		{"exec", "$browser --new-window", "Open browser"},
		{"exec", "$filemanager", "Open file manager"},
		{"exec", "kitty", "Execute: kitty"},
		{"killactive", "", "Kill active window"},
		{"fullscreen", "0", "Toggle fullscreen"},
		{"fullscreen", "1", "Maximize window"},
		{"togglefloating", "", "Toggle floating mode"},
		{"workspace", "3", "Switch to workspace 3"},
		{"movetoworkspace", "3", "Move window to workspace 3"},
		{"pseudo", "", "pseudo"},
		{"movefocus", "l", "movefocus l"},
	}

	for _, tt := range tests {
		t.Run(tt.dispatcher+" "+tt.args, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateDescription(tt.dispatcher, tt.args))
		})
	}
}
