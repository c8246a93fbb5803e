package redisstore

import "github.com/redis/go-redis/v9"

// Script return codes shared by the write scripts.
const (
	codeOK       = 1
	codeNotFound = -1
	codeConflict = -2
)

// insertScript stores a new entity hash and indexes it.
//
// KEYS: entity, children, all
// ARGV: kind, parent, version, data, id
var insertScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return -2
end
redis.call('HSET', KEYS[1], 'kind', ARGV[1], 'parent', ARGV[2], 'version', ARGV[3], 'data', ARGV[4])
redis.call('SADD', KEYS[2], ARGV[5])
redis.call('SADD', KEYS[3], ARGV[5])
return 1
`)

// commitScript is the conditional write. The stored version must equal the
// expected one; it is then incremented by one and the payload replaced. A
// changed parent moves the id between children sets. The old set's key is
// derived from the stored parent, so the script assumes a single Redis node.
//
// KEYS: entity, new children
// ARGV: kind, expected version, data, new parent, id, children key prefix
var commitScript = redis.NewScript(`
local cur = redis.call('HMGET', KEYS[1], 'kind', 'version', 'parent')
if not cur[1] or cur[1] ~= ARGV[1] then
  return -1
end
if tonumber(cur[2]) ~= tonumber(ARGV[2]) then
  return -2
end
if cur[3] ~= ARGV[4] then
  redis.call('SREM', ARGV[6] .. cur[3], ARGV[5])
  redis.call('SADD', KEYS[2], ARGV[5])
  redis.call('HSET', KEYS[1], 'parent', ARGV[4])
end
redis.call('HSET', KEYS[1], 'data', ARGV[3])
return redis.call('HINCRBY', KEYS[1], 'version', 1)
`)

// deleteScript removes an entity and its index entries.
//
// KEYS: entity, all
// ARGV: kind, id, children key prefix
var deleteScript = redis.NewScript(`
local cur = redis.call('HMGET', KEYS[1], 'kind', 'parent')
if not cur[1] or cur[1] ~= ARGV[1] then
  return -1
end
redis.call('SREM', ARGV[3] .. cur[2], ARGV[2])
redis.call('SREM', KEYS[2], ARGV[2])
redis.call('DEL', KEYS[1])
return 1
`)
