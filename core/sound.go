package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot       SoundType = iota // Player shot
	SoundDamageTaken                  // Player hit
	SoundBossLaugh                    // Boss raises shield
	SoundClick                        // UI confirm
	SoundTypeCount
)

var soundNames = [...]string{"shoot", "damage_taken", "boss_laughter", "button_click"}

func (s SoundType) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves an effect name, ok is false for unknown names
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// MusicTrack identifies a looping background track
type MusicTrack int

const (
	MusicNone MusicTrack = iota
	MusicLevel1
	MusicLevel2
	MusicLevel3
	MusicBoss
	MusicMenu
	MusicTrackCount
)

var musicNames = [...]string{"", "level1Music", "level2Music", "level3Music", "bossMusic", "mainMenuMusic"}

func (m MusicTrack) String() string {
	if m >= 0 && int(m) < len(musicNames) {
		return musicNames[m]
	}
	return "unknown"
}

// ParseMusicTrack resolves a track name, ok is false for unknown names
func ParseMusicTrack(name string) (MusicTrack, bool) {
	for i, n := range musicNames {
		if i > 0 && n == name {
			return MusicTrack(i), true
		}
	}
	return MusicNone, false
}
