package config

// Schema is the JSON schema for validating configuration files
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "ssh_key_path": {
            "type": "string",
            "description": "Path to the private key used for key-based destinations"
        },
        "destinations": {
            "type": "array",
            "items": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "minLength": 1
                    },
                    "host": {
                        "type": "string",
                        "minLength": 1
                    },
                    "port": {
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 65535
                    },
                    "username": {
                        "type": "string",
                        "minLength": 1
                    },
                    "remote_path": {
                        "type": "string",
                        "minLength": 1
                    },
                    "password": {
                        "type": "string"
                    }
                },
                "required": ["name", "host", "username", "remote_path"]
            }
        }
    },
    "required": ["ssh_key_path", "destinations"]
}`
