package core

import (
	"log"
	"os"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/sleepysdevin/demolition-mp/shared/leveldata"
	"github.com/sleepysdevin/demolition-mp/shared/netcomponents"
)

// LoadLevel builds the authoritative prop set from a TMX file, or from the
// built-in arena when path is empty. Every prop becomes a synced entity so
// late joiners receive the current destroyed set in their first snapshot.
func (s *Server) LoadLevel(path string) error {
	var arena *leveldata.ArenaData
	if path == "" {
		arena = leveldata.DefaultArena()
	} else {
		loaded, err := leveldata.LoadArena(os.DirFS("."), path)
		if err != nil {
			return err
		}
		arena = loaded
	}

	for _, placement := range arena.Props {
		entity := s.world.Create(netcomponents.NetProp)
		entry := s.world.Entry(entity)

		s.mu.Lock()
		id := s.nextID
		s.nextID++
		s.mu.Unlock()

		netcomponents.NetProp.Set(entry, &netcomponents.NetPropData{
			ID:       id,
			Category: placement.Category,
			X:        placement.X,
			Z:        placement.Z,
		})

		if err := srvsync.NetworkSync(s.world, &entity, netcomponents.NetProp); err != nil {
			return err
		}

		s.mu.Lock()
		s.propsByID[id] = entity
		s.mu.Unlock()
	}

	log.Printf("Loaded level %q: %d props, %d floor regions",
		path, len(arena.Props), len(arena.Grounds))
	return nil
}
