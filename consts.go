package md5

import "github.com/zeebo/md5/internal/consts"

// Size is the size of an MD5 digest in bytes.
const Size = consts.Size

// BlockSize is the block size of MD5 in bytes.
const BlockSize = consts.BlockLen
