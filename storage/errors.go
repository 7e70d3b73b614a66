package storage

import "errors"

var ErrTeamNotFound = errors.New("team not found in storage")
var ErrPictureNotFound = errors.New("picture not found in storage")
var ErrVoterNotFound = errors.New("voter not found in storage")
